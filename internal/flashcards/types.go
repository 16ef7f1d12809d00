package flashcards

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

const backendTimestampLayout = time.RFC3339

// Profile is the signed-in account as the client cares about it.
type Profile struct {
	ID     string
	Email  string
	Name   string
	Avatar string
}

// accountPayload mirrors the account object the backend returns from
// /auth/login and /auth/me. A 2xx response may still embed an error message.
type accountPayload struct {
	ID     string `json:"_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	Error  string `json:"error"`
}

func (p accountPayload) profile() Profile {
	return Profile{ID: p.ID, Email: p.Email, Name: p.Name, Avatar: p.Avatar}
}

// Credentials is the /auth/login request body.
type Credentials struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"rememberMe"`
}

// RegisterForm is the /auth/register request body.
type RegisterForm struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProfileUpdate carries the optional fields of PUT /auth/me.
type ProfileUpdate struct {
	Name   string `json:"name,omitempty"`
	Avatar string `json:"avatar,omitempty"`
}

// CardPack describes a deck entry from GET /cards/pack.
type CardPack struct {
	ID         string `json:"_id"`
	OwnerID    string `json:"user_id"`
	OwnerName  string `json:"user_name"`
	Name       string `json:"name"`
	CardsCount int    `json:"cardsCount"`
	CreatedAt  string `json:"created"`
	UpdatedAt  string `json:"updated"`
}

// ParsedUpdatedAt returns the update timestamp as time.Time when possible.
func (p CardPack) ParsedUpdatedAt() time.Time {
	return parseTime(p.UpdatedAt)
}

// PacksPage mirrors the GET /cards/pack response.
type PacksPage struct {
	CardPacks     []CardPack `json:"cardPacks"`
	TotalCount    int        `json:"cardPacksTotalCount"`
	MaxCardsCount int        `json:"maxCardsCount"`
	MinCardsCount int        `json:"minCardsCount"`
	Page          int        `json:"page"`
	PageCount     int        `json:"pageCount"`
}

// PackAttrs carries the fields of a new pack. The backend fills in the rest.
type PackAttrs struct {
	Name      string `json:"name,omitempty"`
	DeckCover string `json:"deckCover,omitempty"`
	Private   bool   `json:"private,omitempty"`
}

// PackUpdate carries the fields of PUT /cards/pack.
type PackUpdate struct {
	ID   string `json:"_id"`
	Name string `json:"name,omitempty"`
}

// Card describes a single card from GET /cards/card.
type Card struct {
	ID        string  `json:"_id"`
	PackID    string  `json:"cardsPack_id"`
	Question  string  `json:"question"`
	Answer    string  `json:"answer"`
	Grade     float64 `json:"grade"`
	Shots     int     `json:"shots"`
	OwnerID   string  `json:"user_id"`
	CreatedAt string  `json:"created"`
	UpdatedAt string  `json:"updated"`
}

// ParsedUpdatedAt returns the update timestamp as time.Time when possible.
func (c Card) ParsedUpdatedAt() time.Time {
	return parseTime(c.UpdatedAt)
}

// CardsPage mirrors the GET /cards/card response.
type CardsPage struct {
	Cards       []Card  `json:"cards"`
	TotalCount  int     `json:"cardsTotalCount"`
	MaxGrade    float64 `json:"maxGrade"`
	MinGrade    float64 `json:"minGrade"`
	Page        int     `json:"page"`
	PageCount   int     `json:"pageCount"`
	PackOwnerID string  `json:"packUserId"`
}

// PackQuery configures GET /cards/pack requests. Zero values mean "no
// constraint" and are omitted from the query string.
type PackQuery struct {
	Name      string
	Min       int
	Max       int
	Sort      string
	Page      int
	PageCount int
	OwnerID   string
}

func (q PackQuery) values() url.Values {
	values := url.Values{}
	if name := strings.TrimSpace(q.Name); name != "" {
		values.Set("packName", name)
	}
	if q.Min > 0 {
		values.Set("min", strconv.Itoa(q.Min))
	}
	if q.Max > 0 {
		values.Set("max", strconv.Itoa(q.Max))
	}
	if sort := strings.TrimSpace(q.Sort); sort != "" {
		values.Set("sortPacks", sort)
	}
	if q.Page > 0 {
		values.Set("page", strconv.Itoa(q.Page))
	}
	if q.PageCount > 0 {
		values.Set("pageCount", strconv.Itoa(q.PageCount))
	}
	if owner := strings.TrimSpace(q.OwnerID); owner != "" {
		values.Set("user_id", owner)
	}
	return values
}

// CardQuery configures GET /cards/card requests. PackID is mandatory.
type CardQuery struct {
	PackID    string
	Question  string
	Answer    string
	Min       int
	Max       int
	Sort      string
	Page      int
	PageCount int
}

func (q CardQuery) values() url.Values {
	values := url.Values{}
	values.Set("cardsPack_id", q.PackID)
	if question := strings.TrimSpace(q.Question); question != "" {
		values.Set("cardQuestion", question)
	}
	if answer := strings.TrimSpace(q.Answer); answer != "" {
		values.Set("cardAnswer", answer)
	}
	if q.Min > 0 {
		values.Set("min", strconv.Itoa(q.Min))
	}
	if q.Max > 0 {
		values.Set("max", strconv.Itoa(q.Max))
	}
	if sort := strings.TrimSpace(q.Sort); sort != "" {
		values.Set("sortCards", sort)
	}
	if q.Page > 0 {
		values.Set("page", strconv.Itoa(q.Page))
	}
	if q.PageCount > 0 {
		values.Set("pageCount", strconv.Itoa(q.PageCount))
	}
	return values
}

func parseTime(value string) time.Time {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}
	}
	ts, err := time.Parse(backendTimestampLayout, trimmed)
	if err != nil {
		return time.Time{}
	}
	return ts
}
