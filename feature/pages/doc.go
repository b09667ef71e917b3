// Package pages serves the landing page, the simulator pages and /static.
package pages
