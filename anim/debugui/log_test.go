package debugui_test

import (
	"testing"
	"time"

	"github.com/plus3/anim/anim"
	"github.com/plus3/anim/anim/debugui"
	"github.com/stretchr/testify/assert"
)

func TestMilestoneLogRolls(t *testing.T) {
	log := debugui.NewMilestoneLog(3)

	for i := 0; i < 5; i++ {
		log.Add(time.Duration(i)*time.Second, anim.Milestone{
			Kind:      anim.ClipEnd,
			ClipIndex: i,
		})
	}

	entries := log.Entries()
	assert.Len(t, entries, 3)
	assert.Equal(t, 2, entries[0].Milestone.ClipIndex)
	assert.Equal(t, 4, entries[2].Milestone.ClipIndex)
	assert.Equal(t, 4*time.Second, entries[2].At)
	assert.Equal(t, 5, log.Total())
}

func TestMilestoneLogAddMany(t *testing.T) {
	log := debugui.NewMilestoneLog(8)
	log.Add(time.Second,
		anim.Milestone{Kind: anim.ClipRepetitionEnd},
		anim.Milestone{Kind: anim.ClipEnd},
	)
	assert.Len(t, log.Entries(), 2)
	assert.Equal(t, anim.ClipRepetitionEnd, log.Entries()[0].Milestone.Kind)
}

func TestMilestoneLogClear(t *testing.T) {
	log := debugui.NewMilestoneLog(4)
	log.Add(0, anim.Milestone{Kind: anim.AnimationEnd})
	log.Clear()
	assert.Empty(t, log.Entries())
	assert.Zero(t, log.Total())
}
