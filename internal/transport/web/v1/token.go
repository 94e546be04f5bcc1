package v1

import "net/http"

// TokenFromRequest достаёт сессионный токен из заголовка X-Token.
// Пустой заголовок и отсутствующий неразличимы — дальше оба дадут 401.
func TokenFromRequest(r *http.Request) string {
	return r.Header.Get("X-Token")
}
