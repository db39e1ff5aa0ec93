// Package qbnp is a branch-and-price solver for minimum graph coloring whose
// pricing problem, Maximum-Weight Independent Set, is attacked by a chain of
// increasingly expensive methods: a greedy construction, a simulated
// Recursive QAOA heuristic and an exact MaxSAT fallback.
//
// Layout:
//
//	core/     - contractable weighted graph (merge/split of nodes, representors)
//	builder/  - deterministic fixture graphs and weight policies
//	dimacs/   - DIMACS reader and writer
//	mwis/     - Solution, Heuristic contract, local search, greedy, exact
//	quantum/  - Ising Hamiltonian, analytic QAOA-1 expectations, RQAOA, quantum MWIS
//	bnp/      - column pool, master LP, pricer, Ryan-Foster branching,
//	            propagation, DSATUR seeding and the tree driver
//	cmd/qbnp  - command line front end
//
// A typical coloring run:
//
//	g, _ := dimacs.ReadFile("myciel3.col")
//	s, _ := bnp.NewSolver(g)
//	res, _ := s.Solve(context.Background())
//	fmt.Println(res.NumColors, res.Optimal)
package qbnp
