package loader

import "errors"

var (
	ErrModuleNotFound  = errors.New("route module not found")
	ErrEmptyModuleName = errors.New("route module name cannot be empty")
	ErrPluginOpen      = errors.New("failed to open route plugin")
	ErrSymbolNotFound  = errors.New("route plugin symbol not found")
)
