package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/fruitwm/internal/domain/entity"
	"github.com/bnema/fruitwm/internal/infrastructure/config"
)

func TestPointerBindings(t *testing.T) {
	pb, err := pointerBindings(config.PointerConfig{
		Modifiers:    []string{"alt", "shift"},
		MoveButton:   1,
		ResizeButton: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ModAlt|entity.ModShift, pb.Modifier)
	assert.Equal(t, uint8(1), pb.MoveButton)
	assert.Equal(t, uint8(3), pb.ResizeButton)

	_, err = pointerBindings(config.PointerConfig{Modifiers: []string{"hyper"}, MoveButton: 1, ResizeButton: 3})
	assert.Error(t, err)
}
