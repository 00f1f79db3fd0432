package insighting

import "errors"

var (
	// ErrInvalidWindow indica uma janela de agregação não positiva
	ErrInvalidWindow = errors.New("janela de agregação deve ser um número de dias positivo")
)
