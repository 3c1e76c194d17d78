package backupService

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"duitai/internal/entity"
	"duitai/internal/state"
)

type IBackupService interface {
	Export(ctx context.Context) (entity.Snapshot, string, error)
	Import(ctx context.Context, raw []byte, confirmed bool) error
}

type backupService struct {
	log   *logrus.Logger
	state *state.Controller
}

func New(log *logrus.Logger, stateController *state.Controller) IBackupService {
	return &backupService{
		log:   log,
		state: stateController,
	}
}

// Export returns the snapshot and the download filename, which carries the
// export date.
func (s *backupService) Export(ctx context.Context) (entity.Snapshot, string, error) {
	snapshot := s.state.ExportSnapshot()
	filename := fmt.Sprintf("duitai-backup-%s.json", time.Now().Format("2006-01-02"))
	return snapshot, filename, nil
}

func (s *backupService) Import(ctx context.Context, raw []byte, confirmed bool) error {
	return s.state.ImportSnapshot(ctx, raw, confirmed)
}
