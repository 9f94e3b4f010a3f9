package storage

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/validator.v2"

	"github.com/Jaskaranbir/bank-ledger/logger"
)

// FileStore is Store backed by a single flat file
// containing the JSON-encoded snapshot.
// Use #NewFileStore to create new instance.
type FileStore struct {
	log      logger.Logger
	filePath string
}

// FileStoreCfg defines config for FileStore.
type FileStoreCfg struct {
	Log      logger.Logger `validate:"nonnil"`
	FilePath string        `validate:"nonzero"`
}

// NewFileStore validates provided config
// and creates new FileStore-instance.
func NewFileStore(cfg *FileStoreCfg) (*FileStore, error) {
	err := validator.Validate(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "error validating config")
	}

	return &FileStore{
		log:      cfg.Log,
		filePath: cfg.FilePath,
	}, nil
}

// Save writes provided snapshot to the backing file,
// fully overwriting prior contents. The snapshot is
// first written to a temp-file and then renamed, so a
// failed write cannot corrupt the previous snapshot.
func (s *FileStore) Save(snapshot Snapshot) error {
	data, err := json.MarshalIndent(snapshot, "", "    ")
	if err != nil {
		return errors.Wrap(err, "error marshalling snapshot")
	}

	tmpPath := s.filePath + ".tmp"
	err = os.WriteFile(tmpPath, data, 0644)
	if err != nil {
		return errors.Wrap(err, "error writing snapshot-file")
	}
	err = os.Rename(tmpPath, s.filePath)
	if err != nil {
		return errors.Wrap(err, "error replacing snapshot-file")
	}

	s.log.Tracef("Saved snapshot with %d account(s) to: %s", len(snapshot), s.filePath)
	return nil
}

// Load reads the last-saved snapshot from the backing file.
// A missing file is not an error: it is the empty initial
// state of a fresh ledger.
func (s *FileStore) Load() (Snapshot, error) {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			s.log.Debugf("No snapshot-file at: %s, starting empty", s.filePath)
			return Snapshot{}, nil
		}
		return nil, errors.Wrap(err, "error reading snapshot-file")
	}

	snapshot := Snapshot{}
	err = json.Unmarshal(data, &snapshot)
	if err != nil {
		return nil, errors.Wrap(err, "error unmarshalling snapshot")
	}

	s.log.Tracef("Loaded snapshot with %d account(s) from: %s", len(snapshot), s.filePath)
	return snapshot, nil
}
