package console

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Los mensajes exactos del backend son contrato; la vista los reconoce por
// substring y los traduce a texto accionable.
func TestFriendlyAuthError_SubstringsConocidos(t *testing.T) {
	cases := []struct {
		backend string
		want    string
	}{
		{"Invalid token", "El access token no es válido. Pide uno nuevo a tu administrador."},
		{"Token has already been used", "Ese access token ya fue usado. Cada token sirve para un solo registro; pide otro."},
		{"Invalid credentials", "Email o contraseña incorrectos."},
	}

	for _, tc := range cases {
		t.Run(tc.backend, func(t *testing.T) {
			assert.Equal(t, tc.want, friendlyAuthError(fmt.Errorf("%s", tc.backend)))
		})
	}
}

func TestFriendlyAuthError_DesconocidoPasaTalCual(t *testing.T) {
	got := friendlyAuthError(fmt.Errorf("upstream exploded"))
	assert.Equal(t, "upstream exploded", got)
}
