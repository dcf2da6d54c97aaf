// Package config resolves gotask settings.
//
// Later layers win:
//
//	defaults < user file < project file < environment < flags
//
// The user file is ~/.gotask/gotask.toml, or gotask/gotask.toml under the OS
// config directory when that does not exist. The project file is gotask.toml
// (or .gotask.toml) in the working directory. LoadWithSources records which
// layer set each field and which keys in the files were not recognized, for
// the doctor command.
package config
