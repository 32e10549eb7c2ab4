package user

import (
	"fmt"
	"strings"
	"time"
)

// Role is the closed set of portal roles.
type Role string

const (
	RoleAdmin      Role = "admin"
	RolePresidente Role = "presidente"
	RoleJugador    Role = "jugador"
	RoleAlumno     Role = "alumno"
)

func ParseRole(v string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(v))) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RolePresidente:
		return RolePresidente, nil
	case RoleJugador:
		return RoleJugador, nil
	case RoleAlumno:
		return RoleAlumno, nil
	default:
		return "", fmt.Errorf("unknown role %q", v)
	}
}

// User is a portal account.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}

func (u User) Validate() error {
	if u.ID == "" {
		return fmt.Errorf("user id is required")
	}
	if strings.TrimSpace(u.Name) == "" {
		return fmt.Errorf("user name is required")
	}
	if strings.TrimSpace(u.Email) == "" {
		return fmt.Errorf("user email is required")
	}
	if _, err := ParseRole(string(u.Role)); err != nil {
		return err
	}

	return nil
}

// Principal is the request-scoped identity carried through context.
type Principal struct {
	UserID string
	Role   Role
}
