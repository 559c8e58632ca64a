package model

import (
	"bytes"
	"encoding/gob"
	"io"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// DefaultArtifactName is the model artifact filename inside the app
// directory.
const DefaultArtifactName = "atmo_percent_predictor.model"

// ErrCorruptArtifact indicates the artifact file exists but was not
// written by this tool (or was truncated).
var ErrCorruptArtifact = errors.New("corrupt model artifact")

// artifactMagic prefixes every artifact so foreign files fail fast
// instead of producing a garbage decode.
var artifactMagic = []byte("ATMOF1")

// SaveArtifact serializes the fitted forest to path, overwriting any
// existing artifact.
func SaveArtifact(path string, f *Forest) error {
	if f == nil {
		return errors.New("forest required")
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create model artifact: %s", path)
	}

	if _, err := file.Write(artifactMagic); err != nil {
		file.Close()
		return errors.Wrapf(err, "failed to write artifact header: %s", path)
	}
	if err := gob.NewEncoder(file).Encode(f); err != nil {
		file.Close()
		return errors.Wrapf(err, "failed to encode model artifact: %s", path)
	}
	if err := file.Close(); err != nil {
		return errors.Wrapf(err, "failed to close model artifact: %s", path)
	}

	log.Debugf("model artifact saved: %s (%d trees)", path, len(f.Trees))
	return nil
}

// LoadArtifact reads a previously saved forest. A missing file
// surfaces as an os.ErrNotExist-wrapped error; a file without the
// expected header surfaces as ErrCorruptArtifact.
func LoadArtifact(path string) (*Forest, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open model artifact: %s", path)
	}
	defer file.Close()

	magic := make([]byte, len(artifactMagic))
	if _, err := io.ReadFull(file, magic); err != nil {
		return nil, errors.Wrapf(ErrCorruptArtifact, "failed to read header: %s", path)
	}
	if !bytes.Equal(magic, artifactMagic) {
		return nil, errors.Wrapf(ErrCorruptArtifact, "unexpected header in: %s", path)
	}

	var f Forest
	if err := gob.NewDecoder(file).Decode(&f); err != nil {
		return nil, errors.Wrapf(ErrCorruptArtifact, "failed to decode: %s", path)
	}
	return &f, nil
}
