package sound

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

const resampleQuality = 4

// Extensions lists the sound file formats that can replace a cue.
var Extensions = []string{".mp3", ".ogg", ".flac", ".wav"}

// SupportedFile reports whether the file extension is a known sound format.
func SupportedFile(path string) bool {
	return slices.Contains(Extensions, strings.ToLower(filepath.Ext(path)))
}

// loadFile decodes a sound file into memory at the speaker sample rate so
// that it can be replayed without touching the filesystem.
func loadFile(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	var (
		stream beep.StreamSeekCloser
		format beep.Format
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".ogg":
		stream, format, err = vorbis.Decode(f)
	case ".mp3":
		stream, format, err = mp3.Decode(f)
	case ".flac":
		stream, format, err = flac.Decode(f)
	case ".wav":
		stream, format, err = wav.Decode(f)
	default:
		_ = f.Close()
		return nil, errInvalidSoundFormat.Fmt(path)
	}

	if err != nil {
		_ = f.Close()
		return nil, err
	}

	defer func() {
		_ = stream.Close()
	}()

	var s beep.Streamer = stream
	if format.SampleRate != SampleRate {
		s = beep.Resample(resampleQuality, format.SampleRate, SampleRate, stream)
	}

	buf := beep.NewBuffer(beep.Format{
		SampleRate:  SampleRate,
		NumChannels: 2,
		Precision:   2,
	})

	buf.Append(s)

	if err := stream.Err(); err != nil {
		return nil, err
	}

	return buf, nil
}
