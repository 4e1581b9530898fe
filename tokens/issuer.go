package tokens

// Issuer signs every blinded token of a request with the key the token names.
type Issuer interface {
	Evaluate(req *SignRequest) (*SignResponse, error)
	UseCase() []byte
}
