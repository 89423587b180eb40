// Package curve implements secp256k1 point arithmetic in affine coordinates.
//
// The arithmetic here is deliberately the textbook short-Weierstrass
// formulation (a=0, b=7) with double-and-add scalar multiplication, so the
// intermediate values can be checked against published test vectors. It is
// NOT constant-time: timing side channels leak scalar bits. Callers handling
// real secret keys on shared hardware should substitute a hardened
// implementation that produces identical outputs.
package curve

import (
	"fmt"
	"math/big"
)

// Curve parameters for secp256k1 (SEC 2, section 2.4.1).
var (
	// P is the prime of the underlying field.
	P, _ = new(big.Int).SetString("fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f", 16)

	// N is the order of the base point G.
	N, _ = new(big.Int).SetString("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141", 16)

	// Gx, Gy are the affine coordinates of the base point.
	Gx, _ = new(big.Int).SetString("79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798", 16)
	Gy, _ = new(big.Int).SetString("483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8", 16)
)

// PrivateKeyLen is the byte length of a secp256k1 scalar.
const PrivateKeyLen = 32

// CompressedPubKeyLen is the byte length of a compressed public key.
const CompressedPubKeyLen = 33

// Point is an affine point on secp256k1. The nil pointer represents the
// point at infinity.
type Point struct {
	X, Y *big.Int
}

// G returns a fresh copy of the base point.
func G() *Point {
	return &Point{X: new(big.Int).Set(Gx), Y: new(big.Int).Set(Gy)}
}

// ModInverse computes the modular inverse of a modulo m using the extended
// Euclidean algorithm. The result is normalized into [0, m).
func ModInverse(a, m *big.Int) *big.Int {
	// Iterative extended Euclid: track only the coefficient of a.
	r0, r1 := new(big.Int).Mod(a, m), new(big.Int).Set(m)
	s0, s1 := big.NewInt(1), big.NewInt(0)

	for r1.Sign() != 0 {
		q := new(big.Int).Div(r0, r1)

		r0, r1 = r1, new(big.Int).Sub(r0, new(big.Int).Mul(q, r1))
		s0, s1 = s1, new(big.Int).Sub(s0, new(big.Int).Mul(q, s1))
	}

	return s0.Mod(s0, m)
}

// Double returns 2P using the tangent-line formula.
// Doubling the point at infinity, or a point with y=0, yields infinity.
func Double(p *Point) *Point {
	if p == nil || p.Y.Sign() == 0 {
		return nil
	}

	// lambda = 3x^2 / 2y  (a=0 for secp256k1)
	num := new(big.Int).Mul(p.X, p.X)
	num.Mul(num, big.NewInt(3))
	den := new(big.Int).Lsh(p.Y, 1)
	lambda := num.Mul(num, ModInverse(den, P))
	lambda.Mod(lambda, P)

	x3 := new(big.Int).Mul(lambda, lambda)
	x3.Sub(x3, new(big.Int).Lsh(p.X, 1))
	x3.Mod(x3, P)

	y3 := new(big.Int).Sub(p.X, x3)
	y3.Mul(y3, lambda)
	y3.Sub(y3, p.Y)
	y3.Mod(y3, P)

	return &Point{X: x3, Y: y3}
}

// Add returns p1 + p2 using the chord-line formula.
func Add(p1, p2 *Point) *Point {
	if p1 == nil {
		return clonePoint(p2)
	}
	if p2 == nil {
		return clonePoint(p1)
	}

	if p1.X.Cmp(p2.X) == 0 {
		if p1.Y.Cmp(p2.Y) == 0 {
			return Double(p1)
		}
		// p2 = -p1
		return nil
	}

	// lambda = (y2 - y1) / (x2 - x1)
	num := new(big.Int).Sub(p2.Y, p1.Y)
	den := new(big.Int).Sub(p2.X, p1.X)
	den.Mod(den, P)
	lambda := num.Mul(num, ModInverse(den, P))
	lambda.Mod(lambda, P)

	x3 := new(big.Int).Mul(lambda, lambda)
	x3.Sub(x3, p1.X)
	x3.Sub(x3, p2.X)
	x3.Mod(x3, P)

	y3 := new(big.Int).Sub(p1.X, x3)
	y3.Mul(y3, lambda)
	y3.Sub(y3, p1.Y)
	y3.Mod(y3, P)

	return &Point{X: x3, Y: y3}
}

// ScalarMult returns k*p via binary double-and-add, scanning the scalar from
// its most significant bit.
func ScalarMult(k *big.Int, p *Point) *Point {
	var result *Point // infinity

	for i := k.BitLen() - 1; i >= 0; i-- {
		result = Double(result)
		if k.Bit(i) == 1 {
			result = Add(result, p)
		}
	}

	return result
}

// ValidateScalar checks that k encodes a scalar in [1, N).
func ValidateScalar(k []byte) error {
	if len(k) != PrivateKeyLen {
		return fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidKey, PrivateKeyLen, len(k))
	}
	scalar := new(big.Int).SetBytes(k)
	if scalar.Sign() == 0 {
		return fmt.Errorf("%w: scalar is zero", ErrInvalidKey)
	}
	if scalar.Cmp(N) >= 0 {
		return fmt.Errorf("%w: scalar exceeds curve order", ErrInvalidKey)
	}
	return nil
}

// DerivePublicKey computes the 33-byte compressed public key for the given
// 32-byte private scalar. The prefix byte is 0x02 for even y, 0x03 for odd.
func DerivePublicKey(privKey []byte) ([]byte, error) {
	if err := ValidateScalar(privKey); err != nil {
		return nil, err
	}

	k := new(big.Int).SetBytes(privKey)
	pub := ScalarMult(k, G())
	if pub == nil {
		// Unreachable for k in [1, N), kept as a guard.
		return nil, fmt.Errorf("%w: scalar multiplication produced infinity", ErrInvalidKey)
	}

	return Compress(pub), nil
}

// Compress serializes a point to its 33-byte compressed form.
func Compress(p *Point) []byte {
	out := make([]byte, CompressedPubKeyLen)
	if p.Y.Bit(0) == 0 {
		out[0] = 0x02
	} else {
		out[0] = 0x03
	}
	p.X.FillBytes(out[1:])
	return out
}

func clonePoint(p *Point) *Point {
	if p == nil {
		return nil
	}
	return &Point{X: new(big.Int).Set(p.X), Y: new(big.Int).Set(p.Y)}
}
