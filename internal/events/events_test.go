package events

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestRecorder_NumbersEvents(t *testing.T) {
	r := NewRecorder()
	assert.Equal(t, 1, r.CurrentNationFocusEventNum())

	r.CreateAnnexEvent("GER", "AUS")
	states := []int{10, 11}
	r.CreateSudetenEvent("GER", "CZE", states)
	states[0] = 99
	r.CreateFactionEvents("GER", "ITA")

	assert.Equal(t, 4, r.CurrentNationFocusEventNum())
	want := []Event{
		{Num: 1, Kind: KindAnnex, Home: "GER", Target: "AUS"},
		{Num: 2, Kind: KindSudeten, Home: "GER", Target: "CZE", States: []int{10, 11}},
		{Num: 3, Kind: KindFaction, Home: "GER", Target: "ITA"},
	}
	if diff := cmp.Diff(want, r.Events()); diff != "" {
		t.Errorf("unexpected events (-want +got):\n%s", diff)
	}
}

func TestRecorder_FocusHooks(t *testing.T) {
	r := NewRecorder()
	r.AddFocusEvent("GER", "flavor_root")
	assert.Equal(t, []FocusHook{{Tag: "GER", FocusID: "flavor_root"}}, r.FocusHooks())
}
