// Package database handles the MongoDB connection.
//
// It wraps the official Go driver to configure timeouts from the application's
// configuration and verifies the connection with a ping before handing the
// database back to the caller.
//
// # Connect
//
// Connect resolves the database name (explicit override first, then the path
// of the connection string), connects, pings the primary and returns a
// *mongo.Database. A URI without a database path is rejected.
//
// # Usage
//
//	db, err := database.Connect(ctx, cfg.Mongo)
//	if err != nil {
//	    return err
//	}
//	defer db.Client().Disconnect(ctx)
package database
