package model

// Package model contains the shared data types of the application: release
// feed descriptors, update download tasks, and word definition records.
