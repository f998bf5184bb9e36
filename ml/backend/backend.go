// Package backend registriert alle eingebauten Graph-Builder-Backends.
package backend

import (
	_ "github.com/7blacky7/tensorlower/ml/backend/ref"
)
