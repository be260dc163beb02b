// Doc.go documents the D8 direction code table:
//
//	code | meaning    | (Δrow, Δcol)
//	   1 | east       | ( 0, +1)
//	   2 | south-east | (+1, +1)
//	   4 | south      | (+1,  0)
//	   8 | south-west | (+1, -1)
//	  16 | west       | ( 0, -1)
//	  32 | north-west | (-1, -1)
//	  64 | north      | (-1,  0)
//	 128 | north-east | (-1, +1)
//	   0 | terminator/invalid
//
// Offsets are precomputed and immutable once a Matrix is built, the same
// approach gridgraph.GridGraph takes for 4/8-way grid connectivity,
// generalized here to the fixed D8 direction alphabet.
package fdmatrix
