package models

// QuizResult represents the trainee's answer for one order of a running session
type QuizResult struct {
	Position      int     `json:"position"`
	DrinkID       int64   `json:"drinkId"`
	DrinkName     string  `json:"drinkName"`
	Size          Size    `json:"size"`
	Modifier      *string `json:"modifier,omitempty"`
	IsCorrect     bool    `json:"isCorrect"`
	UserAnswer    []int64 `json:"userAnswer"`
	CorrectAnswer []int64 `json:"correctAnswer"`
}

// SessionContext tracks a trainee's way through a session.
//
// It is a plain value: every transition returns a new context and leaves the receiver untouched.
type SessionContext struct {
	Session      *PracticeSession `json:"session"`
	CurrentIndex int              `json:"currentIndex"`
	Results      []QuizResult     `json:"results"`
}

// NewSessionContext starts a context at the first order of the session
func NewSessionContext(session *PracticeSession) SessionContext {
	return SessionContext{Session: session}
}

// Current returns the order to be answered next; ok is false once every order is answered
func (c SessionContext) Current() (Order, bool) {
	if c.Session == nil || c.CurrentIndex >= len(c.Session.Orders) {
		return Order{}, false
	}
	return c.Session.Orders[c.CurrentIndex], true
}

// Record stores a result for the current order and moves to the next one
func (c SessionContext) Record(result QuizResult) SessionContext {
	results := make([]QuizResult, len(c.Results), len(c.Results)+1)
	copy(results, c.Results)
	return SessionContext{
		Session:      c.Session,
		CurrentIndex: c.CurrentIndex + 1,
		Results:      append(results, result),
	}
}

// Done reports whether every order has been answered
func (c SessionContext) Done() bool {
	_, ok := c.Current()
	return !ok
}

// CorrectCount returns the number of correct results recorded so far
func (c SessionContext) CorrectCount() int {
	n := 0
	for _, r := range c.Results {
		if r.IsCorrect {
			n++
		}
	}
	return n
}
