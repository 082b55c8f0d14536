package entity

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ClientType is the payment arrangement for a client.
type ClientType int

const (
	ClientTypeCOD    ClientType = iota // cash on delivery
	ClientTypeCredit                   // account
)

var clientTypeNames = [...]string{"COD", "Credit"}

func (t ClientType) String() string {
	if t.Valid() {
		return clientTypeNames[t]
	}
	return strconv.Itoa(int(t))
}

// Valid reports whether t is a known variant.
func (t ClientType) Valid() bool { return t >= ClientTypeCOD && t <= ClientTypeCredit }

// ParseClientType accepts the symbolic name (any case) or the ordinal ("0", "1").
func ParseClientType(s string) (ClientType, error) {
	s = strings.TrimSpace(s)
	for i, name := range clientTypeNames {
		if strings.EqualFold(s, name) {
			return ClientType(i), nil
		}
	}
	if n, err := strconv.Atoi(s); err == nil && ClientType(n).Valid() {
		return ClientType(n), nil
	}
	return ClientTypeCOD, fmt.Errorf("unknown client type %q", s)
}

// MarshalJSON writes the symbolic name.
func (t ClientType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON accepts either "COD"/"Credit" or 0/1.
func (t *ClientType) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case string:
		ct, err := ParseClientType(v)
		if err != nil {
			return err
		}
		*t = ct
	case float64:
		ct := ClientType(int(v))
		if float64(int(v)) != v || !ct.Valid() {
			return fmt.Errorf("unknown client type %v", v)
		}
		*t = ct
	default:
		return fmt.Errorf("client type must be a string or number")
	}
	return nil
}

// Client is a customer the hub delivers to.
type Client struct {
	ID             string // 32 hex chars, no dashes
	Name           string
	Address        string
	ContactDetails string
	Type           ClientType
	CreatedAtUtc   time.Time
	UpdatedAtUtc   time.Time
}
