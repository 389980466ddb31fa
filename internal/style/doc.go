// Package style locates, loads and prints style files.
//
// Two formats are understood. The clang-format flavoured YAML file
// (.cmake_format, .cmake-format.yaml) accepts the value aliases clang-format
// users write (UseTab: Always, SpacesInParens: Never, AlignOperands:
// DontAlign). The TOML file (.cmake-format.toml) uses the option names as
// plain keys. Both are applied on top of a base format.Options, so a file
// only needs the keys it changes.
package style
