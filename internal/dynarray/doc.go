// Package dynarray provides a growable, index-checked list backed by a
// single owned buffer.
//
// A [List] tracks its logical length (Count) separately from the size of
// its backing buffer (Capacity). Appends that would overflow the buffer
// double its size. Every indexed operation is bounded by Count, not by
// Capacity:
//
//   - [List.Get], [List.Set]: read and write live elements
//   - [List.Add], [List.AddRange], [List.Insert]: grow the list
//   - [List.Remove], [List.RemoveAt], [List.Clear]: shrink it
//   - [List.IndexOf], [List.Find], [List.FindAll]: linear scans
//
// # Example
//
//	cities := dynarray.New[string]()
//	cities.AddRange("New york", "London", "Baku")
//	if err := cities.Insert(2, "Sydney"); err != nil {
//		return err
//	}
//	fmt.Println(cities.IndexOf("Baku")) // 3
//
// A List is not safe for concurrent use.
package dynarray
