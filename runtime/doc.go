// Package runtime defines the contract between the execution engine and
// scalar evaluators.
//
// The engine builds a tree of ScalarEvaluatorFactory values once per query.
// Each partition (worker) calls CreateScalarEvaluator on the root factory to
// obtain its own ScalarEvaluator, then calls Evaluate once per input Frame.
// Evaluators own their scratch state and are not safe for concurrent use;
// factories are.
//
//	f, err := sequence.NewFactory("op:union",
//	    runtime.ColumnAccessFactory{Index: 0},
//	    runtime.ColumnAccessFactory{Index: 1},
//	)
//	ev, err := f.CreateScalarEvaluator(runtime.NewTaskContext(partition, nil))
//	for _, row := range rows {
//	    var out xdm.Pointable
//	    if err := ev.Evaluate(row, &out); err != nil {
//	        return err
//	    }
//	    emit(out.Bytes()) // copy before the next Evaluate
//	}
package runtime
