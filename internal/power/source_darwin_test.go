//go:build darwin

package power

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePmset(t *testing.T) {
	onBattery := `Now drawing from 'Battery Power'
 -InternalBattery-0 (id=4456547)	57%; discharging; 3:42 remaining present: true
`
	charging := `Now drawing from 'AC Power'
 -InternalBattery-0 (id=4456547)	98%; charging; 0:12 remaining present: true
`
	desktop := `Now drawing from 'AC Power'
`

	snap := parsePmset(onBattery)
	assert.True(t, snap.Present)
	assert.False(t, snap.Charging)
	assert.True(t, snap.PercentKnown)
	assert.Equal(t, 57, snap.Percent)

	snap = parsePmset(charging)
	assert.True(t, snap.Present)
	assert.True(t, snap.Charging)
	assert.Equal(t, 98, snap.Percent)

	snap = parsePmset(desktop)
	assert.False(t, snap.Present)
}
