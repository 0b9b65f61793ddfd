// Package config reads the harness settings from the environment.
package config
