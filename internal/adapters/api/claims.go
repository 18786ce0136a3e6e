package api

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/bnema/devconnect-cli/internal/domain"
	jwtlib "github.com/golang-jwt/jwt/v5"
)

var errMissingUserClaim = errors.New("access credential carries no user id")

// AccessClaims is the part of the access credential the client reads locally. The
// signature is not checked; the server remains the authority.
type AccessClaims struct {
	UserID    domain.UserID
	ExpiresAt time.Time
}

func (c AccessClaims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && now.After(c.ExpiresAt)
}

func ParseAccessClaims(raw string) (AccessClaims, error) {
	token, _, err := jwtlib.NewParser().ParseUnverified(raw, jwtlib.MapClaims{})
	if err != nil {
		return AccessClaims{}, fmt.Errorf("parse access credential: %w", err)
	}

	claims, ok := token.Claims.(jwtlib.MapClaims)
	if !ok {
		return AccessClaims{}, errors.New("parse access credential: unexpected claims type")
	}

	userID, err := userIDClaim(claims)
	if err != nil {
		return AccessClaims{}, err
	}

	out := AccessClaims{UserID: userID}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		out.ExpiresAt = exp.Time
	}
	return out, nil
}

func userIDClaim(claims jwtlib.MapClaims) (domain.UserID, error) {
	raw, ok := claims["user_id"]
	if !ok {
		raw, ok = claims["sub"]
	}
	if !ok {
		return 0, errMissingUserClaim
	}

	switch v := raw.(type) {
	case float64:
		return domain.UserID(v), nil
	case string:
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("parse user id claim %q: %w", v, err)
		}
		return domain.UserID(id), nil
	default:
		return 0, errMissingUserClaim
	}
}
