package session

import (
	"errors"
	"image"
	"testing"

	"chance-dice/internal/dice"
	dicemock "chance-dice/internal/dice/mock"
	"chance-dice/internal/fonts"
	"chance-dice/internal/render"
	"chance-dice/internal/segment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixedWidth struct{}

func (fixedWidth) Measure(_ segment.Role, _ fonts.Size, text string) float64 {
	return float64(len(text)) * 8
}

type blankImages struct{}

func (blankImages) Get(_ dice.AssetID, w, h int) (*image.NRGBA, error) {
	return image.NewNRGBA(image.Rect(0, 0, w, h)), nil
}

func newSession(src *dicemock.MockRoller) *Session {
	return New(dice.NewRoller(src), render.NewRenderer(fixedWidth{}, blankImages{}, nil))
}

func expectRoll(src *dicemock.MockRoller, pitchSize int) {
	gomock.InOrder(
		src.EXPECT().Roll(8).Return(1, nil),
		src.EXPECT().Roll(2).Return(2, nil),
		src.EXPECT().Roll(24).Return(1, nil),
		src.EXPECT().Roll(pitchSize).Return(4, nil),
	)
}

func TestSession_InitialState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := newSession(dicemock.NewMockRoller(ctrl))
	assert.Equal(t, Idle, s.State())
	assert.Equal(t, dice.Face("C"), s.Current().Pitch)
	assert.True(t, s.Frame().Empty())

	f := s.Resize(1200, 800)
	require.Len(t, f.Regions, 4)
	require.Len(t, f.Plans, 1, "only the initial pitch is shown")
}

func TestSession_Roll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	src := dicemock.NewMockRoller(ctrl)
	s := newSession(src)
	s.Resize(1200, 800)

	expectRoll(src, 24)
	f, err := s.Roll(24)
	require.NoError(t, err)

	assert.Equal(t, Idle, s.State())
	assert.Equal(t, dice.RollResult{
		Duration:     dice.Breve,
		Augmentation: "No Dot",
		Chord:        "maj",
		Pitch:        "C⩨/Dd",
		Tuning:       dice.Tuning24,
	}, s.Current())
	assert.Len(t, f.Plans, 4)
	assert.Equal(t, f, s.Frame())
}

func TestSession_ResizeDoesNotRedraw(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	src := dicemock.NewMockRoller(ctrl)
	s := newSession(src)

	expectRoll(src, 12)
	_, err := s.Roll(99)
	require.NoError(t, err)
	before := s.Current()
	assert.Equal(t, dice.Face("D#/Eb"), before.Pitch)

	// no further Roll expectations: a draw here fails the test
	small := s.Resize(1600, 900)
	assert.Len(t, small.Plans, 4)
	assert.Equal(t, before, s.Current())

	degenerate := s.Resize(0, 0)
	assert.True(t, degenerate.Empty())
	assert.Empty(t, degenerate.Plans)
	assert.Equal(t, before, s.Current())

	again := s.Resize(1200, 800)
	assert.Len(t, again.Plans, 4)
}

func TestSession_RollErrorKeepsPreviousResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	src := dicemock.NewMockRoller(ctrl)
	s := newSession(src)
	s.Resize(1200, 800)
	prev := s.Frame()

	src.EXPECT().Roll(8).Return(0, errors.New("no entropy"))
	f, err := s.Roll(12)
	require.Error(t, err)
	assert.Equal(t, prev, f)
	assert.Equal(t, dice.Face("C"), s.Current().Pitch)
	assert.Equal(t, Idle, s.State())
}
