// This file triggers Go code generation from the OpenAPI contract.
// Run manually with:
//   go generate ./tools/codegen/openapi/go
//
// Generates code into /generated/go/<domain>/ following config files
// stored under /tools/codegen/openapi/go/configs/. Each config keeps only
// the operations tagged with its domain.

package main

//go:generate go tool oapi-codegen -config ./configs/workers.yaml    ../../../../contracts/workforce.yaml
//go:generate go tool oapi-codegen -config ./configs/workplaces.yaml ../../../../contracts/workforce.yaml

func main() {}
