// Package optics implements light transport helpers for dielectric interfaces.
package optics

import (
	"math"

	"github.com/achilleasa/sampletrace/types"
)

// Fresnel returns the fraction of unpolarized light reflected at a dielectric
// interface. I is the incident direction, N the surface normal and ior the
// index of refraction of the medium N points away from. Both vectors must be
// normalized and ior must be positive. When dot(I, N) > 0 the ray is leaving
// the medium and the indices are swapped.
//
// Total internal reflection yields exactly 1. The transmitted fraction is
// 1 - Fresnel(I, N, ior).
func Fresnel(I, N types.Vec3, ior float32) float32 {
	cosi := clamp(I.Dot(N), -1, 1)
	etai, etat := float32(1), ior
	if cosi > 0 {
		etai, etat = etat, etai
	}

	// Snell's law
	sint := etai / etat * sqrt(max(0, 1-cosi*cosi))
	if sint >= 1 {
		return 1
	}

	cost := sqrt(max(0, 1-sint*sint))
	cosi = float32(math.Abs(float64(cosi)))
	rs := ((etat * cosi) - (etai * cost)) / ((etat * cosi) + (etai * cost))
	rp := ((etai * cosi) - (etat * cost)) / ((etai * cosi) + (etat * cost))
	return (rs*rs + rp*rp) / 2
}

// Reflect mirrors I around N.
func Reflect(I, N types.Vec3) types.Vec3 {
	return I.Sub(N.Mul(2 * I.Dot(N)))
}

// Refract bends I through the interface using the same orientation rules as
// Fresnel. It returns false when total internal reflection occurs.
func Refract(I, N types.Vec3, ior float32) (types.Vec3, bool) {
	cosi := clamp(I.Dot(N), -1, 1)
	etai, etat := float32(1), ior
	n := N
	if cosi < 0 {
		cosi = -cosi
	} else {
		etai, etat = etat, etai
		n = N.Neg()
	}

	eta := etai / etat
	k := 1 - eta*eta*(1-cosi*cosi)
	if k < 0 {
		return types.Vec3{}, false
	}
	return I.Mul(eta).Add(n.Mul(eta*cosi - sqrt(k))), true
}

func clamp(v, lo, hi float32) float32 {
	return min(max(v, lo), hi)
}

func sqrt(v float32) float32 {
	return float32(math.Sqrt(float64(v)))
}
