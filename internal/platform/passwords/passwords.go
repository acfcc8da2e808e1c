package passwords

import "golang.org/x/crypto/bcrypt"

// Hasher encapsula el hashing one-way de contraseñas.
// La comparación siempre es verify-against-hash, nunca texto plano.
type Hasher interface {
	Hash(plain string) (string, error)
	Compare(hash, plain string) error
}

// Bcrypt usa golang.org/x/crypto/bcrypt (salted por diseño del algoritmo).
type Bcrypt struct {
	// Cost 0 => bcrypt.DefaultCost. En tests conviene bcrypt.MinCost.
	Cost int
}

func (b Bcrypt) Hash(plain string) (string, error) {
	cost := b.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	h, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

func (b Bcrypt) Compare(hash, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}
