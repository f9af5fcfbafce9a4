// SPDX-License-Identifier: MIT
package osmload_test

import "github.com/paulmach/osm"

func osmNode(id int64) osm.NodeID { return osm.NodeID(id) }
