package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/braheezy/qoa"
	"github.com/ebitengine/oto/v3"
)

// loopReader rewinds r whenever it runs out, so the player never reaches EOF.
type loopReader struct {
	r io.ReadSeeker
}

func (l *loopReader) Read(p []byte) (int, error) {
	n, err := l.r.Read(p)
	if !errors.Is(err, io.EOF) {
		return n, err
	}
	if _, err := l.r.Seek(0, io.SeekStart); err != nil {
		return n, err
	}
	if n > 0 {
		return n, nil
	}
	// an empty track would spin forever
	n, err = l.r.Read(p)
	if n == 0 && errors.Is(err, io.EOF) {
		return 0, io.EOF
	}
	return n, nil
}

// ambience plays one QOA track in a loop for the lifetime of the viewer.
type ambience struct {
	context *oto.Context
	player  *oto.Player
}

func newAmbience(track string, volume float64) (*ambience, error) {
	qoaBytes, err := os.ReadFile(track)
	if err != nil {
		return nil, fmt.Errorf("error reading QOA file: %w", err)
	}
	qoaMetadata, qoaAudioData, err := qoa.Decode(qoaBytes)
	if err != nil {
		return nil, fmt.Errorf("error decoding QOA data: %w", err)
	}

	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   int(qoaMetadata.SampleRate),
		ChannelCount: int(qoaMetadata.Channels),
		// QOA is always 16 bit
		Format: oto.FormatSignedInt16LE,
	})
	if err != nil {
		return nil, fmt.Errorf("oto.NewContext failed: %w", err)
	}
	<-ready

	reader := qoa.NewReader(qoaAudioData, int(qoaMetadata.Channels))
	player := ctx.NewPlayer(&loopReader{r: reader})
	player.SetVolume(volume)
	player.Play()
	return &ambience{context: ctx, player: player}, nil
}

func (a *ambience) Close() error {
	a.player.Pause()
	return a.player.Close()
}
