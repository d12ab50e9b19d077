package cluster_test

import (
	"fmt"

	"github.com/katalvlaran/lvlquest/cluster"
)

// ExampleSizesAfterConnections connects the single closest pair among three
// points and prints the resulting partition.
func ExampleSizesAfterConnections() {
	// 1. Two near points and one far outlier.
	points := []cluster.Point3{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 5, Y: 5, Z: 5},
	}

	// 2. Apply only the cheapest edge (distance² = 1).
	sizes := cluster.SizesAfterConnections(points, 1)

	fmt.Println("sizes:", sizes)
	fmt.Println("top-3 product:", cluster.TopSizesProduct(sizes, 3))
	// Output:
	// sizes: [2 1]
	// top-3 product: 2
}

// ExampleFinalConnection finds the pair whose connection completes the
// single component and multiplies their x-coordinates.
func ExampleFinalConnection() {
	points := []cluster.Point3{
		{X: 2, Y: 0, Z: 0},
		{X: 3, Y: 0, Z: 0},
		{X: 50, Y: 0, Z: 0},
		{X: 51, Y: 0, Z: 0},
	}

	p, q, err := cluster.FinalConnection(points)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("final pair: (%d,%d,%d)-(%d,%d,%d), x-product: %d\n",
		p.X, p.Y, p.Z, q.X, q.Y, q.Z, p.X*q.X)
	// Output: final pair: (3,0,0)-(50,0,0), x-product: 150
}
