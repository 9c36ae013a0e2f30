package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// FlexInt acepta identificadores que llegan como número o como texto numérico
// (los select de la consola envían "3" en lugar de 3).
type FlexInt int

// UnmarshalJSON soporta número, string y null.
func (fi *FlexInt) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*fi = 0
		return nil
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*fi = 0
			return nil
		}
		v, err := strconv.Atoi(s)
		if err != nil {
			return err
		}
		*fi = FlexInt(v)
		return nil
	}
	var v int
	if err := json.Unmarshal(trimmed, &v); err != nil {
		return err
	}
	*fi = FlexInt(v)
	return nil
}

// MarshalJSON serializa el valor interno como entero.
func (fi FlexInt) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(fi))
}

// Int devuelve el valor entero nativo.
func (fi FlexInt) Int() int {
	return int(fi)
}
