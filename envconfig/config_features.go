// config_features.go - Limits fuer den Graph-Aufbau
//
// Dieses Modul enthaelt:
// - MaxGraphNodes: Obergrenze der Knoten pro Referenz-Context
package envconfig

var (
	// MaxGraphNodes begrenzt die Anzahl der Knoten in einem Referenz-Context
	// 0 = unbegrenzt
	MaxGraphNodes = Uint("TENSORLOWER_MAX_GRAPH_NODES", 1<<16)
)
