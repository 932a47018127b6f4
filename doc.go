/*
Package lazysort sorts finite sequences lazily: elements come out one at a
time in sorted order, and only the work needed for the elements actually
pulled is done.

This is useful when only a prefix of the sorted output is needed, such as the
k smallest values or the first value in order that matches a predicate.
Pulling k elements out of n costs O(n + k log n) comparisons on average
instead of the O(n log n) of a full sort. Draining everything costs the same
as a quicksort.

An Iterator is built by one of the package-level functions, each choosing how
elements are compared:

  - Sorted uses the natural order of the type (cmp.Compare).
  - SortedPartial uses the < and > operators and places values that cannot be
    ordered (NaNs) either first or last.
  - SortedPartialBy does the same for a caller supplied partial order.
  - SortedBy uses a caller supplied CompareFunc.

The input sequence is drained when the Iterator is created. Every comparison
is deferred until values are pulled with Next, Take, Collect or by ranging
over All.

Example of reading the three cheapest products:

	products := lazysort.SortedBy(catalog.All(), func(a, b Product) int {
		return cmp.Compare(a.Price, b.Price)
	})

	for _, p := range products.Take(3) {
		fmt.Println(p.Name, p.Price)
	}

	// The Iterator can keep going from where Take left off.
	for p := range products.All() {
		if p.InStock {
			fmt.Println("cheapest in stock:", p.Name)
			break
		}
	}

Sorting is not stable: elements that compare equal may be returned in any
order.
*/
package lazysort
