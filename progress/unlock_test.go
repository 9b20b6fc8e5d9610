package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnlockedIndexes(t *testing.T) {
	ordered := []string{"m1", "m2", "m3"}

	tests := []struct {
		name      string
		completed []string
		want      []int
	}{
		{
			name:      "initial state only first module",
			completed: []string{},
			want:      []int{0},
		},
		{
			name:      "first completed unlocks second",
			completed: []string{"m1"},
			want:      []int{0, 1},
		},
		{
			name:      "all completed",
			completed: []string{"m1", "m2", "m3"},
			want:      []int{0, 1, 2},
		},
		{
			name:      "last two completed unlocks everything completed plus first",
			completed: []string{"m2", "m3"},
			want:      []int{0, 1, 2},
		},
		{
			// Completing m3 out of order must not unlock m2.
			name:      "out of order completion does not fill gaps",
			completed: []string{"m3"},
			want:      []int{0, 2},
		},
		{
			name:      "frontier bounded by course length",
			completed: []string{"m3", "m1", "m2"},
			want:      []int{0, 1, 2},
		},
		{
			name:      "completed module missing from course is ignored",
			completed: []string{"deleted-module"},
			want:      []int{0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UnlockedIndexes(ordered, tt.completed))
		})
	}
}

func TestUnlockedIndexesEmptyCourse(t *testing.T) {
	assert.Empty(t, UnlockedIndexes(nil, []string{"m1"}))
}

func TestUnlockedIndexesFrontierProgression(t *testing.T) {
	// Concrete scenario: [m1, m2, m3], complete m1 then m3.
	ordered := []string{"m1", "m2", "m3"}

	completed := []string{}
	assert.Equal(t, []int{0}, UnlockedIndexes(ordered, completed))

	completed, changed := Complete(completed, "m1")
	assert.True(t, changed)
	assert.Equal(t, []int{0, 1}, UnlockedIndexes(ordered, completed))

	// m3 completed without m2: the frontier moves past the end of the course,
	// so m2 is locked again until it is completed itself.
	completed, changed = Complete(completed, "m3")
	assert.True(t, changed)
	assert.Equal(t, []int{0, 2}, UnlockedIndexes(ordered, completed))
	assert.False(t, Contains(completed, "m2"))
}

func TestIsUnlocked(t *testing.T) {
	ordered := []string{"m1", "m2", "m3", "m4"}

	assert.True(t, IsUnlocked(ordered, nil, "m1"))
	assert.False(t, IsUnlocked(ordered, nil, "m2"))
	assert.True(t, IsUnlocked(ordered, []string{"m1"}, "m2"))
	assert.False(t, IsUnlocked(ordered, []string{"m1"}, "m3"))
	assert.False(t, IsUnlocked(ordered, []string{"m1"}, "nope"))
}

func TestPercent(t *testing.T) {
	ordered := []string{"m1", "m2", "m3", "m4"}

	assert.Equal(t, 0.0, Percent(ordered, nil))
	assert.Equal(t, 25.0, Percent(ordered, []string{"m1"}))
	assert.Equal(t, 50.0, Percent(ordered, []string{"m1", "m3"}))
	assert.Equal(t, 100.0, Percent(ordered, []string{"m1", "m2", "m3", "m4"}))

	// Stale IDs from removed modules are not counted.
	assert.Equal(t, 25.0, Percent(ordered, []string{"m1", "removed"}))

	assert.Equal(t, 0.0, Percent(nil, []string{"m1"}))
}
