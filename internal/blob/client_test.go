package blob

import (
	"testing"

	"inventory_agent/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewClientRequiresSourceSettings(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
		want error
	}{
		{
			name: "missing endpoint",
			cfg:  config.Config{ContainerName: "datasets", BlobName: "gestion_demanda.csv"},
			want: ErrMissingEndpoint,
		},
		{
			name: "missing container",
			cfg:  config.Config{SourceEndpoint: "UseDevelopmentStorage=true", BlobName: "gestion_demanda.csv"},
			want: ErrMissingContainer,
		},
		{
			name: "missing blob name",
			cfg:  config.Config{SourceEndpoint: "UseDevelopmentStorage=true", ContainerName: "datasets"},
			want: ErrMissingBlobName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewClient(tt.cfg, zap.NewNop())
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNewClientDevelopmentStorage(t *testing.T) {
	cfg := config.Config{
		SourceEndpoint: "UseDevelopmentStorage=true",
		ContainerName:  "datasets",
		BlobName:       "gestion_demanda.csv",
	}

	client, err := NewClient(cfg, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, "datasets", client.container)
	assert.Equal(t, "gestion_demanda.csv", client.blob)
}
