package registry

import "errors"

// ErrActivityNotFound is returned when no activity has the requested name.
var ErrActivityNotFound = errors.New("activity not found")

// ErrAlreadySignedUp is returned when the email is already in the activity's participant list.
var ErrAlreadySignedUp = errors.New("student is already signed up for this activity")

// ErrNotRegistered is returned when unregistering an email that is not in the participant list.
var ErrNotRegistered = errors.New("student is not registered for this activity")

// ErrActivityFull is returned by Signup when capacity enforcement is enabled
// and the activity already holds MaxParticipants participants.
var ErrActivityFull = errors.New("activity is full")
