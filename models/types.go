package models

// Request types

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type CreatePollRequest struct {
	Question string `json:"question"`
	OptionA  string `json:"optionA"`
	OptionB  string `json:"optionB"`
}

type CastVoteRequest struct {
	PollID       int64  `json:"pollId"`
	ChosenOption string `json:"chosenOption"`
}

// Response types

type RegisterResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"userId"`
}

type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type CastVoteResponse struct {
	Success bool `json:"success"`
}

type MyVoteResponse struct {
	PollID       int64  `json:"pollId"`
	ChosenOption string `json:"chosenOption"`
}

// option label -> vote count; options without votes are omitted
type Tally map[string]int

// Domain types

type User struct {
	ID           int64
	Username     string
	PasswordHash []byte `json:"-"` // Never expose in JSON
}

type Poll struct {
	ID       int64  `json:"pollId"`
	Question string `json:"question"`
	OptionA  string `json:"optionA"`
	OptionB  string `json:"optionB"`
}

// HasOption reports whether label is exactly one of the poll's two options
func (p Poll) HasOption(label string) bool {
	return label == p.OptionA || label == p.OptionB
}

type Vote struct {
	PollID       int64
	UserID       int64
	ChosenOption string
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
