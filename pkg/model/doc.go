// Package model defines the database models for PixVault.
//
// This package contains GORM models that map to the PixVault PostgreSQL
// schema. Every table here is seeded exactly once, at bootstrap time, by
// pkg/bootstrap; later mutation is the job of the surrounding CRUD API.
//
// # Core Models
//
//   - User: account identities
//   - Team: tenant boundary; almost everything else hangs off a team
//   - Role / RolePermission / UserRole: access control records
//   - Project: a team's workspace for images
//   - ConversionProfile: how images get converted
//   - StorageLocation: where originals and outputs live
//   - UploadProfile: ties a project to source/destination storage and a
//     conversion profile
//   - APIKey: credential records; only a derived hash of the key is stored
//
// All foreign keys in the schema are declared DEFERRABLE so the bootstrap
// loader can insert records in any order and let the database validate
// referential integrity at commit.
package model
