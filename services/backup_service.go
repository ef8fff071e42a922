package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"nutritrack/store"
)

// ObjectPutter is the slice of an object store the backup needs.
type ObjectPutter interface {
	PutObject(ctx context.Context, key, contentType string, body []byte) error
}

var ErrBackupDisabled = errors.New("backup storage not configured")

type Snapshot struct {
	TakenAt time.Time                  `json:"taken_at"`
	Entries map[string]json.RawMessage `json:"entries"`
}

type BackupService struct {
	st     store.Store
	putter ObjectPutter
	prefix string
	log    *zap.Logger
	now    func() time.Time
}

// NewBackupService accepts a nil putter; Upload then fails with
// ErrBackupDisabled while Snapshot keeps working.
func NewBackupService(st store.Store, putter ObjectPutter, prefix string, log *zap.Logger) *BackupService {
	return &BackupService{
		st:     st,
		putter: putter,
		prefix: strings.Trim(prefix, "/"),
		log:    log,
		now:    time.Now,
	}
}

// Snapshot copies every stored key into one document.
func (s *BackupService) Snapshot(ctx context.Context) (*Snapshot, error) {
	keys, err := s.st.Keys(ctx, "")
	if err != nil {
		return nil, err
	}
	snap := &Snapshot{TakenAt: s.now().UTC(), Entries: make(map[string]json.RawMessage, len(keys))}
	for _, k := range keys {
		v, err := s.st.Get(ctx, k)
		if errors.Is(err, store.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", k, err)
		}
		if !json.Valid(v) {
			s.log.Warn("skipping non-JSON value in snapshot", zap.String("key", k))
			continue
		}
		snap.Entries[k] = json.RawMessage(v)
	}
	return snap, nil
}

// Upload stores a snapshot and returns the object key it was written to.
func (s *BackupService) Upload(ctx context.Context) (string, error) {
	if s.putter == nil {
		return "", ErrBackupDisabled
	}
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return "", err
	}
	body, err := json.Marshal(snap)
	if err != nil {
		return "", err
	}
	key := fmt.Sprintf("snapshot-%d.json", snap.TakenAt.Unix())
	if s.prefix != "" {
		key = s.prefix + "/" + key
	}
	if err := s.putter.PutObject(ctx, key, "application/json", body); err != nil {
		return "", err
	}
	s.log.Info("backup uploaded", zap.String("key", key), zap.Int("entries", len(snap.Entries)))
	return key, nil
}
