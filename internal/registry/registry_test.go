package registry

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(opts ...Option) *Registry {
	return New(map[string]Activity{
		"Chess Club": {
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 2,
			Participants:    []string{"michael@mergington.edu"},
		},
		"Empty Club": {
			Description:     "Nobody here yet",
			Schedule:        "Never",
			MaxParticipants: 5,
		},
	}, opts...)
}

func TestListReturnsAllFields(t *testing.T) {
	r := New(Default())

	activities := r.List()
	require.Len(t, activities, 9)

	for name, a := range activities {
		assert.NotEmpty(t, a.Description, name)
		assert.NotEmpty(t, a.Schedule, name)
		assert.Positive(t, a.MaxParticipants, name)
		assert.NotNil(t, a.Participants, name)
	}
}

func TestListEmptyParticipantsIsNotNil(t *testing.T) {
	r := newTestRegistry()

	assert.NotNil(t, r.List()["Empty Club"].Participants)
}

func TestListIsSnapshot(t *testing.T) {
	r := newTestRegistry()

	snapshot := r.List()
	a := snapshot["Chess Club"]
	a.Participants[0] = "mutated@mergington.edu"

	assert.Equal(t, []string{"michael@mergington.edu"}, r.List()["Chess Club"].Participants)
}

func TestNewCopiesSeed(t *testing.T) {
	seed := map[string]Activity{
		"Art Club": {MaxParticipants: 3, Participants: []string{"ava@mergington.edu"}},
	}
	r := New(seed)

	_, err := r.Signup("Art Club", "new@mergington.edu")
	require.NoError(t, err)

	assert.Equal(t, []string{"ava@mergington.edu"}, seed["Art Club"].Participants)
}

func TestGet(t *testing.T) {
	r := newTestRegistry()

	a, err := r.Get("Chess Club")
	require.NoError(t, err)
	assert.Equal(t, 2, a.MaxParticipants)

	_, err = r.Get("chess club")
	assert.ErrorIs(t, err, ErrActivityNotFound)
}

func TestSignup(t *testing.T) {
	tests := []struct {
		name     string
		activity string
		email    string
		wantErr  error
		wantMsg  string
		wantLen  int
	}{
		{
			name:     "new participant",
			activity: "Chess Club",
			email:    "a@x.edu",
			wantMsg:  "Signed up a@x.edu for Chess Club",
			wantLen:  2,
		},
		{
			name:     "already signed up",
			activity: "Chess Club",
			email:    "michael@mergington.edu",
			wantErr:  ErrAlreadySignedUp,
			wantLen:  1,
		},
		{
			name:     "unknown activity",
			activity: "Nonexistent Activity",
			email:    "a@x.edu",
			wantErr:  ErrActivityNotFound,
		},
		{
			name:     "names are case-sensitive",
			activity: "chess club",
			email:    "a@x.edu",
			wantErr:  ErrActivityNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRegistry()

			msg, err := r.Signup(tt.activity, tt.email)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, msg)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantMsg, msg)
				assert.Contains(t, r.List()[tt.activity].Participants, tt.email)
			}

			if tt.wantLen > 0 {
				assert.Len(t, r.List()[tt.activity].Participants, tt.wantLen)
			}
		})
	}
}

func TestSignupPreservesOrder(t *testing.T) {
	r := newTestRegistry()

	_, err := r.Signup("Empty Club", "first@mergington.edu")
	require.NoError(t, err)
	_, err = r.Signup("Empty Club", "second@mergington.edu")
	require.NoError(t, err)

	assert.Equal(t, []string{"first@mergington.edu", "second@mergington.edu"}, r.List()["Empty Club"].Participants)
}

func TestSignupCapacity(t *testing.T) {
	t.Run("not enforced by default", func(t *testing.T) {
		r := newTestRegistry()

		for i := 0; i < 3; i++ {
			_, err := r.Signup("Chess Club", fmt.Sprintf("s%d@mergington.edu", i))
			require.NoError(t, err)
		}
		assert.Len(t, r.List()["Chess Club"].Participants, 4)
	})

	t.Run("enforced", func(t *testing.T) {
		r := newTestRegistry(WithCapacityEnforcement(true))

		_, err := r.Signup("Chess Club", "s1@mergington.edu")
		require.NoError(t, err)

		_, err = r.Signup("Chess Club", "s2@mergington.edu")
		assert.ErrorIs(t, err, ErrActivityFull)
		assert.Len(t, r.List()["Chess Club"].Participants, 2)
	})

	t.Run("duplicate reported before full", func(t *testing.T) {
		r := newTestRegistry(WithCapacityEnforcement(true))

		_, err := r.Signup("Chess Club", "s1@mergington.edu")
		require.NoError(t, err)

		_, err = r.Signup("Chess Club", "s1@mergington.edu")
		assert.ErrorIs(t, err, ErrAlreadySignedUp)
	})
}

func TestUnregister(t *testing.T) {
	tests := []struct {
		name     string
		activity string
		email    string
		wantErr  error
	}{
		{name: "registered participant", activity: "Chess Club", email: "michael@mergington.edu"},
		{name: "not registered", activity: "Chess Club", email: "notregistered@mergington.edu", wantErr: ErrNotRegistered},
		{name: "unknown activity", activity: "Nonexistent Activity", email: "michael@mergington.edu", wantErr: ErrActivityNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRegistry()

			msg, err := r.Unregister(tt.activity, tt.email)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Len(t, r.List()["Chess Club"].Participants, 1)
				return
			}

			require.NoError(t, err)
			assert.Contains(t, msg, tt.email)
			assert.NotContains(t, r.List()[tt.activity].Participants, tt.email)
		})
	}
}

func TestSignupUnregisterRoundTrip(t *testing.T) {
	r := New(Default())
	before := r.List()["Drama Club"].Participants

	_, err := r.Signup("Drama Club", "verify@mergington.edu")
	require.NoError(t, err)
	_, err = r.Unregister("Drama Club", "verify@mergington.edu")
	require.NoError(t, err)

	assert.Equal(t, before, r.List()["Drama Club"].Participants)
}

func TestUnregisterKeepsOrder(t *testing.T) {
	r := New(map[string]Activity{
		"Math Club": {MaxParticipants: 10, Participants: []string{"a@x.edu", "b@x.edu", "c@x.edu"}},
	})

	_, err := r.Unregister("Math Club", "b@x.edu")
	require.NoError(t, err)

	assert.Equal(t, []string{"a@x.edu", "c@x.edu"}, r.List()["Math Club"].Participants)
}

func TestConcurrentSignups(t *testing.T) {
	r := newTestRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			// Every goroutine tries the same email as one other goroutine.
			_, _ = r.Signup("Empty Club", fmt.Sprintf("s%d@mergington.edu", i%25))
		}(i)
	}
	wg.Wait()

	assert.Len(t, r.List()["Empty Club"].Participants, 25)
}
