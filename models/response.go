package models

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Response is the envelope every entity access function returns and every route relays.
type Response[T any] struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    T      `json:"data"`
	Error   string `json:"error,omitempty"`
}

func (r Response[T]) OK() bool {
	return r.Status == StatusSuccess
}

func Success[T any](message string, data T) Response[T] {
	return Response[T]{Status: StatusSuccess, Message: message, Data: data}
}

// Failure builds an error envelope; err may be nil when the message says it all.
func Failure[T any](message string, err error) Response[T] {
	res := Response[T]{Status: StatusError, Message: message}
	if err != nil {
		res.Error = err.Error()
	}
	return res
}
