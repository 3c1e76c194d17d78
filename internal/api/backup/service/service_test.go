package backupService

import (
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"duitai/internal/state"
	"duitai/internal/storage"
	"duitai/pkg/utils"
)

func newTestService(t *testing.T) (IBackupService, *state.Controller) {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	controller := state.New(log, storage.NewMemoryStore(), utils.New())
	require.NoError(t, controller.Load(context.Background()))

	return New(log, controller), controller
}

func TestExport(t *testing.T) {
	service, _ := newTestService(t)

	snapshot, filename, err := service.Export(context.Background())
	require.NoError(t, err)

	assert.Equal(t, fmt.Sprintf("duitai-backup-%s.json", time.Now().Format("2006-01-02")), filename)
	assert.Equal(t, "2.2.0", snapshot.Version)
	assert.Len(t, snapshot.Wallets, 2)
	assert.Len(t, snapshot.Categories, 9)
	assert.WithinDuration(t, time.Now(), snapshot.ExportDate, time.Minute)
}

func TestImportRoundTrip(t *testing.T) {
	service, controller := newTestService(t)
	ctx := context.Background()

	_, err := controller.AddTransaction(ctx, 30000, "expense", "Belanja", "kopi", "Jajan")
	require.NoError(t, err)

	raw := []byte(`{
		"transactions": [],
		"wallets": [{"id":"w1","name":"Utama","balance":0,"color":"bg-blue-600"}],
		"categories": ["Lainnya"],
		"firstDayOfMonth": 5
	}`)
	require.NoError(t, service.Import(ctx, raw, true))

	assert.Empty(t, controller.Transactions())
	assert.Len(t, controller.Wallets(), 1)
	assert.Equal(t, 5, controller.FirstDayOfMonth())
}
