package responses

// APIError interface for custom API errors
type APIError interface {
	Error() string
	StatusCode() int
}

type BadRequestError struct {
	Msg string
}

func (e BadRequestError) Error() string {
	return e.Msg
}

func (BadRequestError) StatusCode() int {
	return 400
}

type NotFoundError struct {
	Msg string
}

func (e NotFoundError) Error() string {
	return e.Msg
}

func (NotFoundError) StatusCode() int {
	return 404
}
