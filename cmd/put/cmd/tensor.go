package cmd

import (
	"fmt"

	"github.com/msto63/put/tensor"
	"github.com/spf13/cobra"
)

var tensorCmd = &cobra.Command{
	Use:   "tensor-demo",
	Short: "Demonstrate the tensor operations",
	RunE:  runTensorDemo,
}

func init() {
	rootCmd.AddCommand(tensorCmd)
}

func runTensorDemo(cmd *cobra.Command, args []string) error {
	fmt.Println(styled(headingStyle, "Demonstrating Tensor Operations:"))

	t1 := tensor.New([]float64{1, 2, 3, 4}, []int{2, 2})
	t2 := tensor.New([]float64{5, 6, 7, 8}, []int{2, 2})

	fmt.Printf("t1 = %s\n", t1)
	fmt.Printf("t2 = %s\n", t2)

	binaryOps := []struct {
		label string
		op    func(*tensor.Tensor, *tensor.Tensor) (*tensor.Tensor, error)
	}{
		{"t1 + t2", (*tensor.Tensor).Add},
		{"t1 - t2", (*tensor.Tensor).Subtract},
		{"t1 * t2 (element-wise)", (*tensor.Tensor).Multiply},
		{"t1 @ t2 (matrix multiplication)", (*tensor.Tensor).MatMul},
	}
	for _, entry := range binaryOps {
		result, err := entry.op(t1, t2)
		if err != nil {
			return err
		}
		fmt.Printf("%s = %s\n", entry.label, result)
	}

	transposed, err := t1.Transpose()
	if err != nil {
		return err
	}
	fmt.Printf("t1 transposed = %s\n", transposed)

	fmt.Printf("exp(t1) = %s\n", t1.Exp())
	fmt.Printf("log(t1) = %s\n", t1.Log())

	fmt.Printf("Mean of t1 = %v\n", t1.Mean())
	fmt.Printf("Variance of t1 = %v\n", t1.Variance())
	fmt.Printf("Standard deviation of t1 = %v\n", t1.StdDev())

	return nil
}
