package bootstrap

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"

	"folderswap/internal/adapters/jsonfile"
	"folderswap/internal/adapters/sqlite"
	"folderswap/internal/config"
	"folderswap/internal/domain"
)

func TestNew_Backends(t *testing.T) {
	for _, backend := range []string{config.StoreJSON, config.StoreSQLite} {
		t.Run(backend, func(t *testing.T) {
			ctx := zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())
			dir := t.TempDir()
			src := filepath.Join(dir, "src")
			tgt := filepath.Join(dir, "tgt")
			require.NoError(t, os.MkdirAll(filepath.Join(src, "projectAlpha"), 0755))
			require.NoError(t, os.MkdirAll(filepath.Join(tgt, "projectBeta"), 0755))

			settings := config.Settings{ConfigDir: filepath.Join(dir, "cfg"), Store: backend}

			svc, err := New(ctx, settings)
			require.NoError(t, err)

			_, err = svc.Keywords.Add(ctx, "Project")
			require.NoError(t, err)
			_, err = svc.Directories.Set(ctx, domain.SideSource, src)
			require.NoError(t, err)
			_, err = svc.Directories.Set(ctx, domain.SideTarget, tgt)
			require.NoError(t, err)

			idx, err := svc.Engine.Build(ctx, svc.Directories.Pair(), "project")
			require.NoError(t, err)
			assert.Equal(t, []string{"projectAlpha", "projectBeta"}, idx.Names())
			require.NoError(t, svc.Close())

			reopened, err := New(ctx, settings)
			require.NoError(t, err)
			defer reopened.Close()
			assert.Equal(t, domain.Keywords{"project"}, reopened.Keywords.All())
			assert.Equal(t, domain.DirectoryPair{Source: src, Target: tgt}, reopened.Directories.Pair())
		})
	}
}

func TestOpenStore(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	store, err := OpenStore(ctx, config.Settings{ConfigDir: dir, Store: config.StoreJSON})
	require.NoError(t, err)
	assert.IsType(t, &jsonfile.Store{}, store)

	store, err = OpenStore(ctx, config.Settings{ConfigDir: dir, Store: config.StoreSQLite})
	require.NoError(t, err)
	assert.IsType(t, &sqlite.Store{}, store)
	require.NoError(t, store.Close())

	_, err = OpenStore(ctx, config.Settings{ConfigDir: dir, Store: "etcd"})
	assert.True(t, errors.Is(err, config.ErrUnknownStore))
}
