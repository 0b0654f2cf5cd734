package request

import (
	"errors"

	"github.com/dlclark/regexp2"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// At least 8 characters, not all of them blank.
const passwordRegexPattern = `^(?!\s*$).{8,}$`

var passwordExp = regexp2.MustCompile(passwordRegexPattern, regexp2.Singleline)

var (
	errInvalidPassword         = errors.New("the password must be at least 8 characters")
	errConfirmPasswordMismatch = errors.New("the password confirmation does not match")
)

type RegisterRequest struct {
	Name                 string `json:"name" form:"name"`
	Email                string `json:"email" form:"email"`
	Password             string `json:"password" form:"password"`
	PasswordConfirmation string `json:"password_confirmation" form:"password_confirmation"`
}

func (req *RegisterRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&req.Email, validation.Required, validation.Length(1, 255), is.Email),
		validation.Field(&req.Password, validation.Required, validation.By(validPassword), validation.By(req.confirmed)),
	)
}

func (req *RegisterRequest) confirmed(value interface{}) error {
	if password, _ := value.(string); password != req.PasswordConfirmation {
		return errConfirmPasswordMismatch
	}

	return nil
}

func validPassword(value interface{}) error {
	password, _ := value.(string)

	ok, err := passwordExp.MatchString(password)
	if err != nil || !ok {
		return errInvalidPassword
	}

	return nil
}

type LoginRequest struct {
	Name     string `json:"name" form:"name"`
	Password string `json:"password" form:"password"`
}

func (req *LoginRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required),
		validation.Field(&req.Password, validation.Required),
	)
}
