package encoder

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"sync/atomic"

	"github.com/rs/zerolog/log"
)

const packetIDBytes = 9

// Sequencer issues message counts and packet ids for every emitted message.
// Construct one per process and inject it into the emitters.
//
// The count is a duplicate-suppression hint for receivers, not a uniqueness
// guarantee: concurrent callers may emit messages whose counts arrive out of
// order, which the wire format tolerates. The counter itself is still atomic
// so collisions stay bounded.
type Sequencer struct {
	counter atomic.Uint64
}

func NewSequencer() *Sequencer {
	return &Sequencer{}
}

// NextMsgCnt returns the next message count, wrapping at 128
func (s *Sequencer) NextMsgCnt() int {
	return int((s.counter.Add(1) - 1) % 128)
}

// NewPacketID returns a fresh random 9 byte packet id as upper-case hex
func (s *Sequencer) NewPacketID() string {
	buffer := make([]byte, packetIDBytes)
	if _, err := rand.Read(buffer); err != nil {
		log.Error().Err(err).Msg("Failed to generate packet id")
	}

	return strings.ToUpper(hex.EncodeToString(buffer))
}
