// Package animal provides the handler variants used by the demo chain.
// Each animal accepts the foods it likes and forwards everything else:
//
//   - Monkey: eats a Banana
//   - Squirrel: eats a Nut
//   - Dog: eats a MeatBall
//   - Eater: a named animal with a configurable list of foods
//
// Variants are built directly or through New from a Spec.
package animal
