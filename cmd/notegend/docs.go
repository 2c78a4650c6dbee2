package main

// General API documentation for swaggo. Run `make swagger-gen` to generate docs.
//
// @title           notegend API
// @version         0.1.0
// @description     HTTP API for transcribing lecture audio and generating study material.
//
// @contact.name   notegend maintainers
// @contact.url    https://github.com/your-org/notegend
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
