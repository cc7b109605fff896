// Copyright 2025 The tinytorch Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/tinytorch/tinytorch/internal/tensor"
)

// ParseDType looks up a data type by name, ignoring case ("Float32", "int64", ...).
func ParseDType(name string) (DataType, error) {
	return tensor.ParseDataType(name)
}

// DTypes returns every supported data type in declaration order.
func DTypes() []DataType {
	return tensor.DataTypes()
}
