// tokengen emite un Bearer Token firmado con JWT_SECRET para probar los endpoints de perfil
// sin pasar por el gateway del chatbot.
//
// Uso: go run ./cmd/tokengen <kakao_id> [role] [business_number]
// role por defecto "user".
package main

import (
	"fmt"
	"os"

	"github.com/jhoicas/taxhelper-api/pkg/config"
	"github.com/jhoicas/taxhelper-api/pkg/jwt"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Uso: tokengen <kakao_id> [role] [business_number]")
		os.Exit(2)
	}
	userID := os.Args[1]
	role := jwt.RoleUser
	if len(os.Args) > 2 {
		role = os.Args[2]
	}
	businessNumber := ""
	if len(os.Args) > 3 {
		businessNumber = os.Args[3]
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	if role != jwt.RoleUser && role != jwt.RoleAdmin {
		fmt.Fprintf(os.Stderr, "Rol desconocido %q (user | admin)\n", role)
		os.Exit(2)
	}

	tok, err := jwt.Generate(cfg.JWT.Secret, userID, businessNumber, role, cfg.JWT.Issuer, cfg.JWT.Expiration)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Generar token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(tok)
}
