package contracts

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	spec, err := Load()
	require.NoError(t, err)

	for _, path := range []string{"/workers", "/workers/{id}", "/workplaces", "/workplaces/{id}"} {
		require.NotNil(t, spec.Paths.Find(path), path)
	}

	require.Len(t, spec.Servers, 1)
	require.Equal(t, "/api/v1", spec.Servers[0].URL)
}
