// Package graph defines the JSON wire format for co-authorship graphs.
//
// # Format
//
//	{
//	  "primary": "Ada Lovelace",
//	  "nodes": [
//	    {"id": "Ada Lovelace", "label": "AL", "paper_count": 2, "primary": true,
//	     "size": 14, "color": "red", "tooltip": "Ada Lovelace\nTotal Papers: 2"}
//	  ],
//	  "edges": [
//	    {"source": "Ada Lovelace", "target": "Charles Babbage", "weight": 2,
//	     "color": "#788dbb"}
//	  ]
//	}
//
// Node ids are author display names. Edges are undirected; source sorts
// before target. Output order is deterministic, so equal graphs serialize
// to equal bytes.
package graph
