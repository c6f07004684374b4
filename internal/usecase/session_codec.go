package usecase

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"storefront/internal/domain/model"

	"github.com/golang-jwt/jwt/v4"
)

// 保存されたセッション記録が読めない
var ErrMalformedSession = errors.New("malformed session record")

// セッション記録（User）の保存形式
type SessionCodec interface {
	Encode(user model.User) ([]byte, error)
	Decode(data []byte) (model.User, error)
}

// JSONCodec は {"id","name","email"} をそのまま保存する。
type JSONCodec struct{}

func (JSONCodec) Encode(user model.User) ([]byte, error) {
	return json.Marshal(user)
}

func (JSONCodec) Decode(data []byte) (model.User, error) {
	var u model.User
	if err := json.Unmarshal(data, &u); err != nil {
		return model.User{}, errors.Join(ErrMalformedSession, err)
	}
	if err := validateSessionUser(u); err != nil {
		return model.User{}, err
	}
	return u, nil
}

// JWTCodec はHS256で署名したトークンとして保存する。
// 署名が合わないものは壊れた記録として扱う。
type JWTCodec struct {
	secret []byte
}

func NewJWTCodec(secret string) *JWTCodec {
	return &JWTCodec{secret: []byte(secret)}
}

func (c *JWTCodec) Encode(user model.User) ([]byte, error) {
	claims := jwt.MapClaims{
		"sub":   strconv.FormatInt(user.ID, 10),
		"name":  user.Name,
		"email": user.Email,
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(c.secret)
	if err != nil {
		return nil, err
	}
	return []byte(signed), nil
}

func (c *JWTCodec) Decode(data []byte) (model.User, error) {
	raw := strings.TrimSpace(string(data))

	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return c.secret, nil
	})
	if err != nil || token == nil || !token.Valid {
		return model.User{}, errors.Join(ErrMalformedSession, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return model.User{}, ErrMalformedSession
	}

	sub, _ := claims["sub"].(string)
	id, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return model.User{}, errors.Join(ErrMalformedSession, err)
	}
	name, _ := claims["name"].(string)
	email, _ := claims["email"].(string)

	u := model.User{ID: id, Name: name, Email: email}
	if err := validateSessionUser(u); err != nil {
		return model.User{}, err
	}
	return u, nil
}

func validateSessionUser(u model.User) error {
	if u.ID <= 0 || u.Email == "" {
		return ErrMalformedSession
	}
	return nil
}
