package osutil

const Windows = "windows"

type exitCode int

const ExitError exitCode = 1

const DirPermission = 0o755
