package types

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypes(t *testing.T) {
	{
		tokens := []string{"GENERAL", "Friction-1", "frictionslope-2", "General-22", "Slope-left", "Fixed-0"}
		flags := []BCFLAG{BC_General, BC_Friction, BC_FrictionSlope, BC_General, BC_GeneralSlope, BC_General}
		labels := []string{"", "1", "2", "22", "left", "0"}
		for i, token := range tokens {
			bt := NewBCTAG(token)
			fmt.Printf("bt = %s, bcflag = %v\n", bt, bt.GetFLAG().String())
			assert.Equal(t, flags[i], bt.GetFLAG())
			assert.Equal(t, labels[i], bt.GetLabel())
			assert.NoError(t, bt.Validate())
		}
	}
	{
		bt := NewBCTAG("Wall-3")
		assert.Equal(t, BC_None, bt.GetFLAG())
		assert.Error(t, bt.Validate())
	}
	{
		assert.True(t, BC_FrictionSlope.IsSloped())
		assert.True(t, BC_FrictionSlope.IsFrictional())
		assert.False(t, BC_General.IsSloped())
		assert.False(t, BC_GeneralSlope.IsFrictional())
		assert.Equal(t, "None", BC_None.String())
	}
}
